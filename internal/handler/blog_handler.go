package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/service"
)

// BlogHandler handles blog post requests.
type BlogHandler struct {
	blogService   service.BlogServiceInterface
	maxUploadSize int64
}

// NewBlogHandler creates a new BlogHandler. Images larger than maxUploadSize
// bytes are rejected.
func NewBlogHandler(blogService service.BlogServiceInterface, maxUploadSize int64) *BlogHandler {
	return &BlogHandler{blogService: blogService, maxUploadSize: maxUploadSize}
}

type blogRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	Author    string     `json:"author"`
	Tags      StringList `json:"tags"`
	Published FlexBool   `json:"published"`
}

func bindBlogPost(c *gin.Context) (*domain.BlogPost, error) {
	if isJSONRequest(c) {
		var req blogRequest
		if err := bindJSON(c, &req); err != nil {
			return nil, err
		}
		return &domain.BlogPost{
			Title:     req.Title,
			Content:   req.Content,
			Excerpt:   req.Excerpt,
			Author:    req.Author,
			Tags:      req.Tags,
			Published: bool(req.Published),
		}, nil
	}

	published, _ := formBool(c, "published")
	return &domain.BlogPost{
		Title:     c.PostForm("title"),
		Content:   c.PostForm("content"),
		Excerpt:   c.PostForm("excerpt"),
		Author:    c.PostForm("author"),
		Tags:      formList(c, "tags"),
		Published: published,
	}, nil
}

// List handles GET /api/blog - published posts only.
func (h *BlogHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin handles GET /api/admin/blogs - every post.
func (h *BlogHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *BlogHandler) list(c *gin.Context, publishedOnly bool) {
	posts, err := h.blogService.List(c.Request.Context(), publishedOnly)
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/blog/:slug
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	if err := limitMultipart(c, h.maxUploadSize); err != nil {
		respondError(c, err, "Blog post")
		return
	}

	post, err := bindBlogPost(c)
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}

	image, file, err := readImage(c, h.maxUploadSize)
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}
	defer closeUpload(file)

	if err := h.blogService.Create(c.Request.Context(), post, image); err != nil {
		respondError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	if err := limitMultipart(c, h.maxUploadSize); err != nil {
		respondError(c, err, "Blog post")
		return
	}

	post, err := bindBlogPost(c)
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}
	post.ID = c.Param("id")

	image, file, err := readImage(c, h.maxUploadSize)
	if err != nil {
		respondError(c, err, "Blog post")
		return
	}
	defer closeUpload(file)

	if err := h.blogService.Update(c.Request.Context(), post, image); err != nil {
		respondError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Blog post deleted successfully"})
}
