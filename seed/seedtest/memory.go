// Package seedtest cung cấp store trong bộ nhớ để kiểm thử quá trình seed.
package seedtest

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doc là một document đã lưu cùng id được sinh
type Doc struct {
	ID    string
	Value any
}

// MemoryStore lưu document theo collection, an toàn khi gọi đồng thời.
// FailInsert / FailClear cho phép giả lập lỗi theo tên collection.
type MemoryStore struct {
	mu    sync.Mutex
	docs  map[string][]Doc
	calls []string

	FailInsert map[string]error
	FailClear  map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:       make(map[string][]Doc),
		FailInsert: make(map[string]error),
		FailClear:  make(map[string]error),
	}
}

// Preload thêm sẵn document, dùng để kiểm tra việc thay thế toàn bộ dữ liệu
func (s *MemoryStore) Preload(collection string, values ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range values {
		s.docs[collection] = append(s.docs[collection], Doc{ID: primitive.NewObjectID().Hex(), Value: v})
	}
}

func (s *MemoryStore) Clear(_ context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "clear:"+collection)
	if err := s.FailClear[collection]; err != nil {
		return 0, err
	}
	n := int64(len(s.docs[collection]))
	delete(s.docs, collection)
	return n, nil
}

func (s *MemoryStore) InsertMany(_ context.Context, collection string, values []any) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "insert:"+collection)
	if err := s.FailInsert[collection]; err != nil {
		return nil, fmt.Errorf("chèn %s: %w", collection, err)
	}
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = primitive.NewObjectID().Hex()
		s.docs[collection] = append(s.docs[collection], Doc{ID: ids[i], Value: v})
	}
	return ids, nil
}

func (s *MemoryStore) Count(_ context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.docs[collection])), nil
}

// Docs trả về bản sao các document của collection
func (s *MemoryStore) Docs(collection string) []Doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Doc(nil), s.docs[collection]...)
}

// Calls trả về thứ tự các thao tác đã gọi
func (s *MemoryStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
