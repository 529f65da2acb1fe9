package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BlogStand/blog-service/internal/dto"
	"github.com/BlogStand/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *Handler) postsIndex(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		h.renderError(c)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Home",
		"posts": dto.NewPostViews(posts),
	})
}

func (h *Handler) postsShow(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		h.render404(c)
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.render404(c)
			return
		}
		h.renderError(c)
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": post.Title,
		"post":  dto.NewPostView(*post),
	})
}

func (h *Handler) postsNewForm(c *gin.Context) {
	h.renderPostForm(c, http.StatusOK, false, 0, dto.CreatePostRequest{}, nil)
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBind(&input); err != nil {
		h.renderPostForm(c, http.StatusBadRequest, false, 0, input, formErrors(err))
		return
	}

	if _, err := h.services.Post.Create(c.Request.Context(), input); err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			h.renderPostForm(c, http.StatusConflict, false, 0, input, map[string]string{"Title": err.Error()})
			return
		}
		h.renderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) postsEditForm(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		h.render404(c)
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.render404(c)
			return
		}
		h.renderError(c)
		return
	}

	form := dto.EditPostRequest{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Author:   post.Author,
		ImageURL: post.ImageURL,
		Body:     post.Body,
	}
	h.renderPostForm(c, http.StatusOK, true, postID, form, nil)
}

func (h *Handler) postsEdit(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		h.render404(c)
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBind(&input); err != nil {
		h.renderPostForm(c, http.StatusBadRequest, true, postID, input, formErrors(err))
		return
	}

	if _, err := h.services.Post.Update(c.Request.Context(), postID, input); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			h.render404(c)
		case errors.Is(err, service.ErrTitleTaken):
			h.renderPostForm(c, http.StatusConflict, true, postID, input, map[string]string{"Title": err.Error()})
		default:
			h.renderError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, "/"+strconv.FormatInt(postID, 10))
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		h.render404(c)
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.render404(c)
			return
		}
		h.renderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// renderPostForm renders the shared create/edit form. The form argument may be
// a create or an edit payload; both expose the same field names to the
// template. Previously entered values survive a failed submission.
func (h *Handler) renderPostForm(c *gin.Context, status int, isEdit bool, postID int64, form any, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}

	title := "New Post"
	if isEdit {
		title = "Edit Post"
	}

	c.HTML(status, "make-post.html", gin.H{
		"title":  title,
		"isEdit": isEdit,
		"postID": postID,
		"form":   form,
		"errors": errs,
	})
}

func (h *Handler) render404(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "Not Found"})
}

func (h *Handler) renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"title": "Error"})
}

func parsePostID(c *gin.Context) (int64, error) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		return 0, errInvalidPostID
	}
	return postID, nil
}

func formErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs["Form"] = "Invalid form submission."
		return errs
	}

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			errs[fieldErr.Field()] = "This field is required."
		case "url":
			errs[fieldErr.Field()] = "This field must be a valid URL."
		default:
			errs[fieldErr.Field()] = "Invalid value."
		}
	}

	return errs
}
