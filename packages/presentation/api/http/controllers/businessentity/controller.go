package businessentitycontroller

import (
	"net/http"

	Error "registry/packages/common/errors"
	BusinessEntityDTO "registry/packages/core/businessentity/DTO"
	"registry/packages/infrastructure/DB"
	filterparser "registry/packages/infrastructure/parsers/filter"
	controller "registry/packages/presentation/api/http/controllers"
	"registry/packages/presentation/api/http/request"
	RequestBody "registry/packages/presentation/data/request"
	ResponseBody "registry/packages/presentation/data/response"

	"github.com/labstack/echo/v4"
)

func Create(ctx echo.Context) error {
    var body RequestBody.BusinessEntityPayload

    if err := controller.BindAndValidate(ctx, &body); err != nil {
        return err
    }

    dto, err := DB.Database.CreateBusinessEntity(body.ToDTO())
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.JSON(http.StatusCreated, dto)
}

func GetByID(ctx echo.Context) error {
    id := ctx.Param("id")

    var dto *BusinessEntityDTO.Full
    var err *Error.Status

    switch ctx.QueryParam("state") {
    case "":
        dto, err = DB.Database.FindBusinessEntityByID(id)
    case "any":
        dto, err = DB.Database.FindAnyBusinessEntityByID(id)
    case "deleted":
        dto, err = DB.Database.FindSoftDeletedBusinessEntityByID(id)
    default:
        return echo.NewHTTPError(
            http.StatusBadRequest,
            "Invalid 'state' query parameter value. Expected one of: 'any', 'deleted'",
        )
    }
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.JSON(http.StatusOK, dto)
}

func Search(ctx echo.Context) error {
    reqMeta := request.GetMetadata(ctx)

    flt, opts, err := filterparser.FromQueryString(ctx.QueryString())
    if err != nil {
        controller.Logger.Error("Failed to parse search query", err.Error(), reqMeta)
        return controller.ConvertErrorStatusToHTTP(err)
    }

    dtos, err := DB.Database.SearchBusinessEntities(flt, opts)
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    // opts now carries the paging the compiler actually applied
    return ctx.JSON(http.StatusOK, ResponseBody.NewSearch(dtos, opts.Page, opts.Limit))
}

func Update(ctx echo.Context) error {
    var body RequestBody.BusinessEntityPayload

    if err := controller.BindAndValidate(ctx, &body); err != nil {
        return err
    }

    dto, err := DB.Database.UpdateBusinessEntity(ctx.Param("id"), body.ToDTO())
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.JSON(http.StatusOK, dto)
}

type stateUpdater = func (id string) *Error.Status

func handleStateUpdate(ctx echo.Context, upd stateUpdater) error {
    if err := upd(ctx.Param("id")); err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.NoContent(http.StatusOK)
}

func SoftDelete(ctx echo.Context) error {
    return handleStateUpdate(ctx, DB.Database.SoftDeleteBusinessEntity)
}

func Restore(ctx echo.Context) error {
    return handleStateUpdate(ctx, DB.Database.RestoreBusinessEntity)
}

func Drop(ctx echo.Context) error {
    return handleStateUpdate(ctx, DB.Database.DropBusinessEntity)
}
