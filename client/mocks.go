package client

import (
	"context"

	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/stretchr/testify/mock"
)

type StoreClientMock struct {
	mock.Mock
}

func NewStoreClientMock() *StoreClientMock {
	return &StoreClientMock{}
}

func (o *StoreClientMock) List(ctx context.Context, resource string, page int, limit int) ([]dataview.Record, error) {
	args := o.Called(resource, page, limit)
	records, _ := args.Get(0).([]dataview.Record)
	return records, args.Error(1)
}

func (o *StoreClientMock) Update(ctx context.Context, resource string, id string, fields map[string]interface{}) error {
	args := o.Called(resource, id, fields)
	return args.Error(0)
}

func (o *StoreClientMock) Delete(ctx context.Context, resource string, id string) error {
	args := o.Called(resource, id)
	return args.Error(0)
}
