package utils

import (
	"Civix/pkg/context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/speps/go-hashids/v2"
)

// GenHashID 生成对外短码，用于 URL 中替代自增/雪花主键
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

// DecodeHashID 解析对外短码，非法短码返回 0
func DecodeHashID(salt string, code string) int64 {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) == 0 {
		return 0
	}
	return ids[0]
}

func GetQueryOrTokenUserID(c *gin.Context) (int64, error) {
	if v := c.Query("user_id"); v != "" {
		return strconv.ParseInt(v, 10, 64)
	}
	return context.GetUserID(c)
}
