package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MazeController exposes maze generation and lookup over HTTP.
type MazeController struct {
	mazeService i.MazeService
	logger      *zap.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, logger *zap.Logger) *MazeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MazeController{
		mazeService: ms,
		logger:      logger,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/previews", mc.preview)

	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeByID)
		mazes.GET("/:ID/cells/:x/:y", mc.movementOptions)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", mc.generate)
}

// generate carves and stores a maze owned by the token subject.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := request.params()
	params.Owner = identity.Subject(ctx)

	record, err := mc.mazeService.Generate(ctx.Request.Context(), params)
	if err != nil {
		mc.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// preview renders a maze without storing it.
func (mc *MazeController) preview(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diagram, err := mc.mazeService.Preview(ctx.Request.Context(), request.params())
	if err != nil {
		mc.abort(ctx, err)
		return
	}

	ctx.String(http.StatusOK, diagram)
}

// mazeByID returns a stored maze.
func (mc *MazeController) mazeByID(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		mc.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// movementOptions returns the neighbours reachable from a cell of a stored maze.
func (mc *MazeController) movementOptions(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	x, errX := strconv.Atoi(ctx.Param("x"))
	y, errY := strconv.Atoi(ctx.Param("y"))
	if errX != nil || errY != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "cell coordinates must be integers"})
		return
	}

	options, err := mc.mazeService.MovementOptions(ctx.Request.Context(), ID, maze.Cell{X: x, Y: y})
	if err != nil {
		mc.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, options)
}

// abort maps a service error to a status code and writes it.
func (mc *MazeController) abort(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		mc.logger.Error("maze request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrUnknownAlgorithm),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, service.ErrCellOutOfMazeBound):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMazeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (r GenerateRequest) params() domain.MazeParams {
	return domain.MazeParams{
		Algorithm: maze.Algorithm(r.Algorithm),
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Bias:      r.Bias,
	}
}
