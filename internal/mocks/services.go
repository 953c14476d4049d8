package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"content-site-api/internal/domain"
)

// MockContactService is a mock of service.ContactServiceInterface.
type MockContactService struct {
	mock.Mock
}

func NewMockContactService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContactService {
	m := &MockContactService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockContactService) Submit(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactService) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]domain.Contact)
	return contacts, args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockBlogService is a mock of service.BlogServiceInterface.
type MockBlogService struct {
	mock.Mock
}

func NewMockBlogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlogService {
	m := &MockBlogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBlogService) Create(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error {
	return m.Called(ctx, post, image).Error(0)
}

func (m *MockBlogService) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	args := m.Called(ctx, publishedOnly)
	posts, _ := args.Get(0).([]domain.BlogPost)
	return posts, args.Error(1)
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	post, _ := args.Get(0).(*domain.BlogPost)
	return post, args.Error(1)
}

func (m *MockBlogService) Update(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error {
	return m.Called(ctx, post, image).Error(0)
}

func (m *MockBlogService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockJobService is a mock of service.JobServiceInterface.
type MockJobService struct {
	mock.Mock
}

func NewMockJobService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockJobService {
	m := &MockJobService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockJobService) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobService) List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	args := m.Called(ctx, activeOnly)
	jobs, _ := args.Get(0).([]domain.JobPosting)
	return jobs, args.Error(1)
}

func (m *MockJobService) Get(ctx context.Context, id string) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*domain.JobPosting)
	return job, args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductService is a mock of service.ProductServiceInterface.
type MockProductService struct {
	mock.Mock
}

func NewMockProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductService {
	m := &MockProductService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductService) Create(ctx context.Context, product *domain.Product, image *domain.MediaFile) error {
	return m.Called(ctx, product, image).Error(0)
}

func (m *MockProductService) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, product *domain.Product, image *domain.MediaFile) error {
	return m.Called(ctx, product, image).Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockChatService is a mock of service.ChatServiceInterface.
type MockChatService struct {
	mock.Mock
}

func NewMockChatService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatService {
	m := &MockChatService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChatService) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockChatService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	args := m.Called(ctx)
	msgs, _ := args.Get(0).([]domain.ChatMessage)
	return msgs, args.Error(1)
}

func (m *MockChatService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
