package model

import (
	"encoding/base64"
	"encoding/json"
)

const (
	DepositCollection = "deposits"
	CounterCollection = "counters"
)

const DepositSequenceCounter = "deposit_sequence"

// DepositDocument is an append-only audit record created on every successful
// deposit. It is never mutated and never used in balance computation after
// creation.
type DepositDocument struct {
	Id      uint64 `bson:"_id"` // monotonically increasing sequence id
	Address string `bson:"address"`
	Amount  uint64 `bson:"amount"`
}

// CounterDocument backs the sequence id allocation for deposit records.
type CounterDocument struct {
	Id       string `bson:"_id"`
	Sequence uint64 `bson:"sequence"`
}

type DepositByAddressPagination struct {
	Id uint64 `json:"id"`
}

func DecodeDepositByAddressPaginationToken(token string) (*DepositByAddressPagination, error) {
	tokenBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var d DepositByAddressPagination
	err = json.Unmarshal(tokenBytes, &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *DepositByAddressPagination) GetPaginationToken() (string, error) {
	tokenBytes, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

func BuildDepositByAddressPaginationToken(d DepositDocument) (string, error) {
	page := &DepositByAddressPagination{
		Id: d.Id,
	}
	token, err := page.GetPaginationToken()
	if err != nil {
		return "", err
	}
	return token, nil
}
