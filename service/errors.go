package service

import (
	"errors"
	"fmt"

	"walltea/store"
)

// ErrNotFound 记录不存在或不属于当前用户；两种情况对外不做区分
var ErrNotFound = errors.New("记录不存在或无权访问")

// ValidationError 必填字段缺失或格式错误，调用方可修正后重试
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError 底层存储失败。写操作返回该错误时状态未知，调用方需先核对再重试
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrap 把存储层错误归入 ErrNotFound / StorageError，已分类的错误原样返回
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
