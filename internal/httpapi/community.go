package httpapi

import (
	"net/http"
	"net/url"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/community"

	"github.com/go-chi/chi/v5"
)

func contentParams(q url.Values) backend.ContentListParams {
	return backend.ContentListParams{
		Page:     atoiOr(q.Get("page"), 1),
		PerPage:  atoiOr(q.Get("per_page"), 10),
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	}
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.board.List(r.Context(), chi.URLParam(r, "board"), contentParams(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	post, err := h.board.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, post)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var form community.PostForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	post, err := h.board.Create(r.Context(), credentials(r), form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}
	var form community.PostForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	post, err := h.board.Update(r.Context(), credentials(r), id, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	if err := h.board.Delete(r.Context(), credentials(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPostComments(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	comments, err := h.board.Comments(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, comments)
}

func (h *Handler) createPostComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}
	var form community.CommentForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	comment, err := h.board.CreateComment(r.Context(), credentials(r), id, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (h *Handler) updatePostComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}
	var form community.CommentForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	comment, err := h.board.UpdateComment(r.Context(), credentials(r), id, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, comment)
}

func (h *Handler) deletePostComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	if err := h.board.DeleteComment(r.Context(), credentials(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.blog.List(r.Context(), contentParams(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) getBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, post)
}

func (h *Handler) blogCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.blog.Categories(r.Context()))
}

func (h *Handler) blogTags(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.blog.Tags(r.Context()))
}

func (h *Handler) featuredBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.Featured(r.Context(), atoiOr(r.URL.Query().Get("limit"), 0))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, posts)
}

func (h *Handler) listBlogComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.blog.Comments(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, comments)
}

func (h *Handler) createBlogComment(w http.ResponseWriter, r *http.Request) {
	var form community.CommentForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	comment, err := h.blog.CreateComment(r.Context(), credentials(r), chi.URLParam(r, "slug"), form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, comment)
}

func (h *Handler) updateBlogComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}
	var form community.CommentForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	comment, err := h.blog.UpdateComment(r.Context(), credentials(r), id, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, comment)
}

func (h *Handler) deleteBlogComment(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	if err := h.blog.DeleteComment(r.Context(), credentials(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
