package rest

import (
	"net/http"

	"hud/di"
	"hud/port/provider_port"
	"hud/usecase/ingest_usecase"

	"github.com/labstack/echo/v4"
)

func registerIngestRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	ingest := v1.Group("/ingest")

	ingest.POST("/hackernews", handleIngest(container, container.HackerNewsProvider, false))
	ingest.POST("/reddit", handleIngest(container, container.RedditProvider, true))
	ingest.POST("/x", handleIngest(container, container.XProvider, true))
	if container.RSSProvider != nil {
		ingest.POST("/rss", handleIngest(container, container.RSSProvider, true))
	}
	ingest.POST("/all", handleIngestAll(container))
}

func handleIngest(container *di.ApplicationComponents, provider provider_port.CandidateProviderPort, includeTotal bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := container.IngestUsecase.Execute(c.Request().Context(), provider)
		if err != nil {
			// Storage failures surface as errors; items inserted before the
			// failure stay in place, so the count still goes back
			resp := toIngestResponse(result, includeTotal)
			resp.Status = "error"
			resp.Message = err.Error()
			return c.JSON(http.StatusInternalServerError, resp)
		}

		return c.JSON(http.StatusOK, toIngestResponse(result, includeTotal))
	}
}

func handleIngestAll(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		results := container.IngestUsecase.ExecuteAll(c.Request().Context(), container.Providers())

		resp := IngestAllResponse{Status: "ok"}
		for _, result := range results {
			resp.Results = append(resp.Results, toIngestResponse(result, true))
		}

		return c.JSON(http.StatusOK, resp)
	}
}

func toIngestResponse(result *ingest_usecase.IngestResult, includeTotal bool) IngestResponse {
	resp := IngestResponse{
		Status:   "ok",
		Inserted: result.Inserted,
	}
	if includeTotal {
		total := result.TotalFetched
		resp.TotalFetched = &total
	}
	if result.ProviderErr != nil {
		// Provider unavailability is recovered: zero candidates, not a 500
		resp.Status = "error"
		resp.Message = result.ProviderErr.Error()
	}
	return resp
}
