package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ads-api/domain/repositories"
)

// ErrNoTransaction เขียน field values นอก transaction ของ ad ไม่ได้
var ErrNoTransaction = errors.New("field values must be written inside the ad transaction")

type txKey struct{}

// WithTx ผูก transaction ไว้กับ context ให้ repository อื่นใช้ tx เดียวกัน
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// conn คืน tx ถ้ามีใน context ไม่งั้นใช้ db ปกติ
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// notFound แปลง gorm.ErrRecordNotFound เป็น repositories.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
