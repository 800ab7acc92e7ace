package response

import "github.com/gin-gonic/gin"

// Msg 统一的 {message} 响应体
type Msg struct {
	Message string `json:"message"`
}

// Message 写出 {message}，msg 为空时回退到默认文案
func Message(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = CodeMsgMap[status]
	}
	c.JSON(status, Msg{Message: msg})
}

// Abort 中间件用：中断后续 handler
func Abort(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = CodeMsgMap[status]
	}
	c.AbortWithStatusJSON(status, Msg{Message: msg})
}

// Data 原样写出数据（List 返回裸数组就走这里）
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
