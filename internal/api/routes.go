package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/health-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
)

const OpenAPIPath = "/apidocs.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/query").
			To(handler.Query).
			Doc("Answer a health question").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(models.QueryRequest{}).
			Writes(models.QueryOutcome{}).
			Returns(200, "OK", models.QueryOutcome{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/recommendation").
			To(handler.Recommend).
			Doc("Recommend a wellness tip for the given health goals").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wellness"}).
			Reads(models.UserProfile{}).
			Writes(models.Recommendation{}).
			Returns(200, "OK", models.Recommendation{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(503, "No Tips Loaded", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/nudge").
			To(handler.Nudge).
			Doc("Check whether recent health data warrants a nudge").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wellness"}).
			Reads(models.HealthData{}).
			Writes(models.Nudge{}).
			Returns(200, "OK", models.Nudge{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/report/simplify").
			To(handler.SimplifyReport).
			Doc("Annotate medical terms in report text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"report"}).
			Reads(SimplifyRequest{}).
			Writes(models.SimplifiedReport{}).
			Returns(200, "OK", models.SimplifiedReport{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/report/ocr").
			To(handler.OCRReport).
			Consumes("multipart/form-data").
			Doc("Read a report image and annotate medical terms").
			Metadata(restfulspec.KeyOpenAPITags, []string{"report"}).
			Param(ws.FormParameter("image", "PNG or JPEG report image").DataType("file").Required(true)).
			Writes(models.SimplifiedReport{}).
			Returns(200, "OK", models.SimplifiedReport{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(413, "Image Too Large", middleware.ErrorResponse{}).
			Returns(415, "Unsupported Image", middleware.ErrorResponse{}).
			Returns(422, "No Text Found", middleware.ErrorResponse{}).
			Returns(503, "OCR Unavailable", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/knowledge/topics").
			To(handler.Topics).
			Doc("List knowledge base topics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"knowledge"}).
			Writes(TopicsResponse{}).
			Returns(200, "OK", TopicsResponse{}))

	ws.
		Route(ws.GET("/knowledge/search").
			To(handler.Search).
			Doc("Rank knowledge entries against free text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"knowledge"}).
			Param(ws.QueryParameter("q", "Search text").DataType("string")).
			Param(ws.QueryParameter("top_k", "Maximum matches (default: 3)").DataType("integer").Required(false)).
			Writes(SearchResponse{}).
			Returns(200, "OK", SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterDocs serves the OpenAPI document for every web service already in
// the container.
func RegisterDocs(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

// RegisterMetrics mounts a plain http.Handler, such as the Prometheus
// exposition, next to the REST routes.
func RegisterMetrics(container *restful.Container, path string, h http.Handler) {
	container.Handle(path, h)
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Health Agent API",
			Description: "Health information assistant: safety screening, intent detection, knowledge retrieval, wellness tips and report simplification",
			Version:     apiVersion,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "query", Description: "Question answering"}},
		{TagProps: spec.TagProps{Name: "wellness", Description: "Wellness tips and nudges"}},
		{TagProps: spec.TagProps{Name: "report", Description: "Medical report simplification"}},
		{TagProps: spec.TagProps{Name: "knowledge", Description: "Knowledge base inspection"}},
	}
}
