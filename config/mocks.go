package config

import (
	"time"

	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

func (o *ConfigMock) Default() *ConfigMock {
	o.On("PageSizeOptions").Return([]int{10, 25, 50, 100})
	o.On("DefaultPageSize").Return(25)
	o.On("SearchDebounce").Return(400 * time.Millisecond)
	o.On("BulkConcurrency").Return(4)
	o.On("SupportedBulkActions").Return(BulkDelete | BulkSetStatus)
	o.On("Naming").Return(NamingConventionFn(NewDefaultNaming))
	o.On("Logger").Return(log.Logger(log.NewZapLogger(zap.NewExample())))
	return o
}

func (o *ConfigMock) PageSizeOptions() []int {
	args := o.Called()
	return args.Get(0).([]int)
}

func (o *ConfigMock) DefaultPageSize() int {
	args := o.Called()
	return args.Int(0)
}

func (o *ConfigMock) SearchDebounce() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) BulkConcurrency() int {
	args := o.Called()
	return args.Int(0)
}

func (o *ConfigMock) SupportedBulkActions() BulkActions {
	args := o.Called()
	return args.Get(0).(BulkActions)
}

func (o *ConfigMock) Naming() NamingConventionFn {
	args := o.Called()
	return args.Get(0).(NamingConventionFn)
}

func (o *ConfigMock) Logger() log.Logger {
	args := o.Called()
	return args.Get(0).(log.Logger)
}
