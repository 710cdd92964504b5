package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/services"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type paginationResponse struct {
	NextKey string `json:"next_key"`
}

type PublicResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResultWithPagination[T any](data T, pageToken string) *Result {
	res := &PublicResponse[T]{Data: data, Pagination: &paginationResponse{NextKey: pageToken}}
	return &Result{Data: res, Status: http.StatusOK}
}

func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func decodeJsonPayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}

func parseAddressQuery(request *http.Request, queryName string) (string, *types.Error) {
	address := request.URL.Query().Get(queryName)
	if !utils.IsValidAddress(address) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+queryName,
		)
	}
	return address, nil
}
