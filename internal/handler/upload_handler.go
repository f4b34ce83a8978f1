package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/zemmendes/Lumera-App/internal/middleware"
)

// 上传大小上限 5MB
const maxUploadSize = 5 << 20

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Upload 占位实现：不落盘，只返回素材地址
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "no file"})
		return
	}
	defer file.Close()

	user := middleware.CurrentUser(c)
	url := fmt.Sprintf("/assets/u%d/%s", user.ID, filepath.Base(header.Filename))
	c.JSON(http.StatusOK, gin.H{"url": url})
}
