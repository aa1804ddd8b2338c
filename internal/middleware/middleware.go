package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amaumene/wheretowatch/pkg/logger"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

type gzipResponseWriter struct {
	gin.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) WriteString(s string) (int, error) {
	return w.gzipWriter.Write([]byte(s))
}

func Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		original := c.Writer
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		gzipWriter := gzip.NewWriter(original)
		c.Writer = &gzipResponseWriter{
			ResponseWriter: original,
			gzipWriter:     gzipWriter,
		}

		defer func() {
			c.Writer = original
			if r := recover(); r != nil {
				// Nothing has been flushed yet, so the error body can go out
				// uncompressed with its own status.
				if !original.Written() {
					original.Header().Del("Content-Encoding")
					original.Header().Del("Vary")
				}
				panic(r)
			}
			gzipWriter.Close()
		}()

		c.Next()
	}
}

// CORS allows any origin. Preflight requests are answered here with 200 and
// never reach a route.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// RequestID reuses the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger logs one line per request. The query string is left out because it
// may carry user search terms.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()
		id := GetRequestID(c)

		switch {
		case statusCode >= 500:
			log.Errorf("[%s] %s %s %d %v %s", id, clientIP, method, statusCode, latency, path)
		case statusCode >= 400:
			log.Warnf("[%s] %s %s %d %v %s", id, clientIP, method, statusCode, latency, path)
		default:
			log.Infof("[%s] %s %s %d %v %s", id, clientIP, method, statusCode, latency, path)
		}
	}
}

// Recovery turns a handler panic into a 500 with the standard error body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("[%s] panic serving %s: %v", GetRequestID(c), c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
