package handlers

import (
	"errors"
	"strconv"
)

var errInvalidIndexParam = errors.New("invalid index path parameter")

func parseIndexParam(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errInvalidIndexParam
	}
	return n, nil
}
