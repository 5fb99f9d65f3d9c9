package locationtypecontroller

import (
	"net/http"

	"registry/packages/infrastructure/DB"
	filterparser "registry/packages/infrastructure/parsers/filter"
	controller "registry/packages/presentation/api/http/controllers"
	"registry/packages/presentation/api/http/request"
	RequestBody "registry/packages/presentation/data/request"
	ResponseBody "registry/packages/presentation/data/response"

	"github.com/labstack/echo/v4"
)

// Location types are reference data: no soft deletion, no audit trail.

func Create(ctx echo.Context) error {
    var body RequestBody.LocationTypePayload

    if err := controller.BindAndValidate(ctx, &body); err != nil {
        return err
    }

    dto, err := DB.Database.CreateLocationType(body.ToDTO())
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.JSON(http.StatusCreated, dto)
}

func GetByID(ctx echo.Context) error {
    dto, err := DB.Database.FindLocationTypeByID(ctx.Param("id"))
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

    dtos, err := DB.Database.SearchLocationTypes(flt, opts)
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    // opts now carries the paging the compiler actually applied
    return ctx.JSON(http.StatusOK, ResponseBody.NewSearch(dtos, opts.Page, opts.Limit))
}

func Update(ctx echo.Context) error {
    var body RequestBody.LocationTypePayload

    if err := controller.BindAndValidate(ctx, &body); err != nil {
        return err
    }

    dto, err := DB.Database.UpdateLocationType(ctx.Param("id"), body.ToDTO())
    if err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.JSON(http.StatusOK, dto)
}

func Drop(ctx echo.Context) error {
    if err := DB.Database.DropLocationType(ctx.Param("id")); err != nil {
        return controller.ConvertErrorStatusToHTTP(err)
    }

    return ctx.NoContent(http.StatusOK)
}
