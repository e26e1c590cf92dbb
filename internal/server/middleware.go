package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newSalt returns a per-process salt for visitor hashes, so hashes cannot be
// correlated across restarts.
func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("server: reading random salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP returns a short, salted hash of a client address. Raw addresses are
// never logged.
func hashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// assetKey marks requests answered from the assets directory.
const assetKey = "portfolio.asset"

// requestLogger logs one line per page request. Static files, assets and
// favicons are skipped, and clients sending DNT: 1 are logged without a
// visitor hash.
func requestLogger(logger *zap.Logger, salt, base string) gin.HandlerFunc {
	staticPrefix := base + "static/"

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, staticPrefix) || strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		if c.GetBool(assetKey) {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("visitor", hashIP(salt, c.ClientIP())))
		}
		logger.Info("request", fields...)
	}
}
