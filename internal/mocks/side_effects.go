package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"content-site-api/internal/domain"
)

// MockMediaUploader is a mock of service.MediaUploader.
type MockMediaUploader struct {
	mock.Mock
}

func NewMockMediaUploader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaUploader {
	m := &MockMediaUploader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMediaUploader) Upload(ctx context.Context, file domain.MediaFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockMediaUploader) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// MockNotifier is a mock of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) Send(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
