// Package mocks holds testify mocks for the repository and service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"content-site-api/internal/domain"
)

// MockContactRepository is a mock of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

// NewMockContactRepository creates a mock that asserts its expectations on cleanup.
func NewMockContactRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContactRepository {
	m := &MockContactRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]domain.Contact)
	return contacts, args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockBlogRepository is a mock of repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func NewMockBlogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlogRepository {
	m := &MockBlogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	args := m.Called(ctx, publishedOnly)
	posts, _ := args.Get(0).([]domain.BlogPost)
	return posts, args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug, publishedOnly)
	post, _ := args.Get(0).(*domain.BlogPost)
	return post, args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockJobPostingRepository is a mock of repository.JobPostingRepository.
type MockJobPostingRepository struct {
	mock.Mock
}

func NewMockJobPostingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockJobPostingRepository {
	m := &MockJobPostingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockJobPostingRepository) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobPostingRepository) List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	args := m.Called(ctx, activeOnly)
	jobs, _ := args.Get(0).([]domain.JobPosting)
	return jobs, args.Error(1)
}

func (m *MockJobPostingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*domain.JobPosting)
	return job, args.Error(1)
}

func (m *MockJobPostingRepository) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobPostingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductRepository is a mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockChatRepository is a mock of repository.ChatRepository.
type MockChatRepository struct {
	mock.Mock
}

func NewMockChatRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatRepository {
	m := &MockChatRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockChatRepository) List(ctx context.Context) ([]domain.ChatMessage, error) {
	args := m.Called(ctx)
	msgs, _ := args.Get(0).([]domain.ChatMessage)
	return msgs, args.Error(1)
}

func (m *MockChatRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
