package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BlogStand/blog-service/internal/dto"
	"github.com/BlogStand/blog-service/internal/model"
	"github.com/BlogStand/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePostService implements service.Post in memory with the service's own
// error taxonomy.
type fakePostService struct {
	nextID int64
	posts  map[int64]model.Post
	order  []int64
}

func newFakePostService() *fakePostService {
	return &fakePostService{
		nextID: 1,
		posts:  make(map[int64]model.Post),
	}
}

func (s *fakePostService) FindAll(_ context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	for _, id := range s.order {
		post := s.posts[id]
		posts = append(posts, &post)
	}
	return posts, nil
}

func (s *fakePostService) FindByID(_ context.Context, id int64) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	return &post, nil
}

func (s *fakePostService) Create(_ context.Context, input dto.CreatePostRequest) (*model.Post, error) {
	for _, existing := range s.posts {
		if existing.Title == input.Title {
			return nil, service.ErrTitleTaken
		}
	}

	post := model.Post{
		ID:       s.nextID,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Date:     "June 03, 2024",
		Body:     input.Body,
		Author:   input.Author,
		ImageURL: input.ImageURL,
	}
	s.nextID++
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
	return &post, nil
}

func (s *fakePostService) Update(_ context.Context, id int64, input dto.EditPostRequest) (*model.Post, error) {
	existing, ok := s.posts[id]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	for otherID, other := range s.posts {
		if otherID != id && other.Title == input.Title {
			return nil, service.ErrTitleTaken
		}
	}

	existing.Title = input.Title
	existing.Subtitle = input.Subtitle
	existing.Author = input.Author
	existing.ImageURL = input.ImageURL
	existing.Body = input.Body
	s.posts[id] = existing
	return &existing, nil
}

func (s *fakePostService) Delete(_ context.Context, id int64) error {
	if _, ok := s.posts[id]; !ok {
		return service.ErrPostNotFound
	}

	delete(s.posts, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func setupRouter(t *testing.T, posts *fakePostService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("app.templates", filepath.Join("..", "..", "web", "templates", "*.html"))
	viper.Set("app.static", filepath.Join("..", "..", "web", "static"))
	viper.Set("client.origin", "http://localhost:8080")

	h := New(&service.Service{Post: posts}, zap.NewNop())
	return h.InitRoutes()
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func postForm(title string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {"World"},
		"author":   {"Ada"},
		"img_url":  {"http://x/y.png"},
		"body":     {"<p>hi</p>"},
	}
}

func TestIndexListsPosts(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	_, err := posts.Create(context.Background(), dto.CreatePostRequest{
		Title: "Hello", Subtitle: "World", Author: "Ada",
		ImageURL: "http://x/y.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	w := doGet(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello")
	assert.Contains(t, w.Body.String(), "Ada")
}

func TestShowPost(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	created, err := posts.Create(context.Background(), dto.CreatePostRequest{
		Title: "Hello", Subtitle: "World", Author: "Ada",
		ImageURL: "http://x/y.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	w := doGet(r, "/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "World")
	assert.Contains(t, w.Body.String(), "Ada")
	assert.Contains(t, w.Body.String(), "<p>hi</p>")
	assert.Equal(t, int64(1), created.ID)
}

func TestShowPostNotFound(t *testing.T) {
	r := setupRouter(t, newFakePostService())

	w := doGet(r, "/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doGet(r, "/not-a-number")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewPostFormRenders(t *testing.T) {
	r := setupRouter(t, newFakePostService())

	w := doGet(r, "/new_post")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/new_post"`)
}

func TestCreatePostRedirects(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	w := doPostForm(r, "/new_post", postForm("Hello"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Len(t, posts.posts, 1)
}

func TestCreatePostValidationFailure(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	form := postForm("")
	form.Del("title")
	w := doPostForm(r, "/new_post", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// entered values survive the re-render, nothing is stored
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Contains(t, w.Body.String(), "World")
	assert.Empty(t, posts.posts)
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	w := doPostForm(r, "/new_post", postForm("Hello"))
	assert.Equal(t, http.StatusFound, w.Code)

	w = doPostForm(r, "/new_post", postForm("Hello"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrTitleTaken.Error())
	assert.Len(t, posts.posts, 1)
}

func TestEditFormPrefilled(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	_, err := posts.Create(context.Background(), dto.CreatePostRequest{
		Title: "Hello", Subtitle: "World", Author: "Ada",
		ImageURL: "http://x/y.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	w := doGet(r, "/edit-post/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Hello"`)
	assert.Contains(t, w.Body.String(), `action="/edit-post/1"`)
}

func TestEditPostRedirects(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	_, err := posts.Create(context.Background(), dto.CreatePostRequest{
		Title: "Hello", Subtitle: "World", Author: "Ada",
		ImageURL: "http://x/y.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	w := doPostForm(r, "/edit-post/1", postForm("Hello again"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/1", w.Header().Get("Location"))
	assert.Equal(t, "Hello again", posts.posts[1].Title)
}

func TestEditPostNotFound(t *testing.T) {
	r := setupRouter(t, newFakePostService())

	w := doPostForm(r, "/edit-post/999", postForm("Hello"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	posts := newFakePostService()
	r := setupRouter(t, posts)

	_, err := posts.Create(context.Background(), dto.CreatePostRequest{
		Title: "Hello", Subtitle: "World", Author: "Ada",
		ImageURL: "http://x/y.png", Body: "<p>hi</p>",
	})
	require.NoError(t, err)

	w := doGet(r, "/delete/1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// deleting again is a miss, not a silent success
	w = doGet(r, "/delete/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticPages(t *testing.T) {
	r := setupRouter(t, newFakePostService())

	for _, path := range []string{"/about", "/contact"} {
		w := doGet(r, path)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
