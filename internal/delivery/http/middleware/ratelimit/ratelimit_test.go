package http_ratelimit_middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/config"
	"github.com/stretchr/testify/assert"
)

type RateLimitUnitSuite struct {
	suite.Suite
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newLimiter(burst int) (*Limiter, *clock) {
	c := &clock{now: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return New(config.Limiter{RPS: 1, Burst: burst, Enabled: true}, WithClock(c.Now)), c
}

func (s *RateLimitUnitSuite) TestAllow(t provider.T) {
	t.Parallel()

	t.Run("Should allow burst then refill", func(t provider.T) {
		l, c := newLimiter(2)

		assert.True(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))

		c.now = c.now.Add(time.Second)
		assert.True(t, l.Allow("10.0.0.1"))
	})

	t.Run("Should keep separate buckets per ip", func(t provider.T) {
		l, _ := newLimiter(1)

		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.2"))
	})

	t.Run("Should drop stale buckets", func(t provider.T) {
		l, c := newLimiter(1)

		l.Allow("10.0.0.1")
		c.now = c.now.Add(30 * time.Minute)
		l.Allow("10.0.0.2")
		c.now = c.now.Add(31 * time.Minute)

		l.Cleanup()
		assert.Equal(t, 1, l.Len())
	})
}

func (s *RateLimitUnitSuite) TestMiddleware(t provider.T) {
	t.Run("Should answer 429 once bucket is empty", func(t provider.T) {
		l, _ := newLimiter(1)

		engine := gin.New()
		engine.POST("/reviews", l.Middleware(), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		do := func() int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			engine.ServeHTTP(w, req)
			return w.Code
		}

		assert.Equal(t, http.StatusCreated, do())
		assert.Equal(t, http.StatusTooManyRequests, do())
	})
}

func TestRateLimitUnitSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.RunSuite(t, new(RateLimitUnitSuite))
}
