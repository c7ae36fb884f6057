package controllers

import (
	"github.com/langhamerm/EasyRx/util"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindFields accepts a JSON object or an urlencoded form with bracket keys.
// Any other body is treated as empty, so a submission without fields still
// creates a record.
func bindFields(c *gin.Context) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	if c.Request.ContentLength == 0 {
		return data, nil
	}
	switch c.ContentType() {
	case binding.MIMEJSON:
		if err := c.ShouldBindJSON(&data); err != nil {
			return nil, err
		}
		if data == nil {
			return nil, util.ErrInvalidBody
		}
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		data = formFields(c.Request.PostForm)
	}
	return data, nil
}
