package seed

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedRef = errors.New("tham chiếu chưa được tạo")
	ErrDuplicateRef  = errors.New("tham chiếu bị trùng")
)

// Refs ánh xạ khoá logic (ví dụ "account:admin") sang id do database sinh ra.
// Mỗi bước seed đăng ký id của mình trước khi bước sau đọc.
type Refs struct {
	ids map[string]string
}

func NewRefs() *Refs {
	return &Refs{ids: make(map[string]string)}
}

// Register gán ids theo đúng thứ tự của keys
func (r *Refs) Register(keys, ids []string) error {
	if len(keys) != len(ids) {
		return fmt.Errorf("số id trả về (%d) khác số bản ghi (%d)", len(ids), len(keys))
	}
	for _, key := range keys {
		if _, ok := r.ids[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRef, key)
		}
	}
	for i, key := range keys {
		r.ids[key] = ids[i]
	}
	return nil
}

func (r *Refs) ID(key string) (string, error) {
	id, ok := r.ids[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedRef, key)
	}
	return id, nil
}

func (r *Refs) Len() int {
	return len(r.ids)
}

// resolver giữ lỗi đầu tiên để code dựng document không phải kiểm tra từng lần tra cứu
type resolver struct {
	refs *Refs
	err  error
}

func (r *resolver) id(key string) string {
	if r.err != nil {
		return ""
	}
	id, err := r.refs.ID(key)
	if err != nil {
		r.err = err
	}
	return id
}
