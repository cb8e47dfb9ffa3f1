package middleware

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gin-gonic/gin"
)

// Make the request log better looks
func CustomLogger() gin.HandlerFunc {
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyles := map[int]lipgloss.Style{
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // Green
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // Magenta
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // Red
	}

	methodStyles := map[string]lipgloss.Style{
		"GET":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"POST":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"PUT":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"DELETE": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	defaultStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		statusStyle, ok := statusStyles[statusCode/100]
		if !ok {
			statusStyle = defaultStyle
		}
		methodStyle, ok := methodStyles[c.Request.Method]
		if !ok {
			methodStyle = defaultStyle
		}

		fmt.Printf("%s | %s | %s | %s | %v | %s | %s\n",
			dateStyle.Render(time.Now().Format("2006/01/02 - 15:04:05")),
			idStyle.Render(RequestIDFromContext(c)),
			statusStyle.Render(fmt.Sprintf("%d", statusCode)),
			methodStyle.Render(c.Request.Method),
			latency,
			c.ClientIP(),
			c.Request.URL.Path,
		)
	}
}
