package repositories

import "errors"

// ErrNotFound record ไม่มีในฐานข้อมูล (แทน error ของ driver)
var ErrNotFound = errors.New("record not found")
