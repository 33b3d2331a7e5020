package dataproducts

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dataproducts-io/catalog/pkg/catalog"
	"github.com/dataproducts-io/catalog/pkg/http/routers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func NewRouter(service *catalog.Service) *chi.Mux {
	chiRouter := chi.NewRouter()

	chiRouter.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		term := request.URL.Query().Get("q")

		resp, err := getDataProducts(request.Context(), service, term)
		if err != nil {
			renderError(writer, request, err)
			return
		}

		render.Status(request, http.StatusOK)
		render.JSON(writer, request, resp)
	})

	chiRouter.Get("/count", func(writer http.ResponseWriter, request *http.Request) {
		resp, err := getDataProductCount(request.Context(), service)
		if err != nil {
			renderError(writer, request, err)
			return
		}

		render.Status(request, http.StatusOK)
		render.JSON(writer, request, resp)
	})

	chiRouter.Post("/", func(writer http.ResponseWriter, request *http.Request) {
		data := &RequestPostDataProduct{}
		if err := render.Bind(request, data); err != nil {
			renderError(writer, request, routers.NewAPIError(http.StatusUnprocessableEntity, 42201, fmt.Errorf("error parsing body: %s", err)))
			return
		}

		resp, err := postDataProduct(request.Context(), service, data)
		if err != nil {
			renderError(writer, request, err)
			return
		}

		render.Status(request, http.StatusCreated)
		render.JSON(writer, request, resp)
	})

	chiRouter.Get("/{id}", func(writer http.ResponseWriter, request *http.Request) {
		resp, err := getDataProduct(request.Context(), service, urlParamID(request))
		if err != nil {
			renderError(writer, request, err)
			return
		}

		render.Status(request, http.StatusOK)
		render.JSON(writer, request, resp)
	})

	chiRouter.Patch("/{id}", func(writer http.ResponseWriter, request *http.Request) {
		data := &RequestPatchDataProduct{}
		if err := render.Bind(request, data); err != nil {
			renderError(writer, request, routers.NewAPIError(http.StatusUnprocessableEntity, 42201, fmt.Errorf("error parsing body: %s", err)))
			return
		}

		resp, err := patchDataProduct(request.Context(), service, urlParamID(request), data)
		if err != nil {
			renderError(writer, request, err)
			return
		}

		render.Status(request, http.StatusOK)
		render.JSON(writer, request, resp)
	})

	chiRouter.Delete("/{id}", func(writer http.ResponseWriter, request *http.Request) {
		if err := deleteDataProduct(request.Context(), service, urlParamID(request)); err != nil {
			renderError(writer, request, err)
			return
		}

		render.NoContent(writer, request)
	})

	return chiRouter
}

// urlParamID returns 0 for a malformed id, the service treats it as absent.
func urlParamID(request *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func renderError(writer http.ResponseWriter, request *http.Request, err error) {
	apiError := &routers.APIError{}
	if errors.As(err, &apiError) {
		render.Render(writer, request, apiError)
		return
	}

	render.Status(request, http.StatusInternalServerError)
	render.JSON(writer, request, map[string]interface{}{
		"error_code": 50001,
		"message":    fmt.Sprintf("internal error: %s", err),
	})
}
