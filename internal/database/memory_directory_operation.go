package database

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/open-hangar/aeroledger/internal/utils"
)

// MemorySupplierOperation 只读供应商目录, 数据来自构造时注入的样本
type MemorySupplierOperation struct {
	logger    log.LoggerInterface
	suppliers []*Supplier
}

func NewMemorySupplierOperation(logger log.LoggerInterface, seed []*Supplier) *MemorySupplierOperation {
	return &MemorySupplierOperation{
		logger:    logger,
		suppliers: append(make([]*Supplier, 0, len(seed)), seed...),
	}
}

func (supplierOperation *MemorySupplierOperation) GetSuppliers() ([]*Supplier, error) {
	result := make([]*Supplier, len(supplierOperation.suppliers))
	copy(result, supplierOperation.suppliers)
	return result, nil
}

// MemorySensorDataOperation 只读飞行传感器数据, 数据来自构造时注入的样本
type MemorySensorDataOperation struct {
	logger log.LoggerInterface
	data   []*FlightSensorData
}

func NewMemorySensorDataOperation(logger log.LoggerInterface, seed []*FlightSensorData) *MemorySensorDataOperation {
	return &MemorySensorDataOperation{
		logger: logger,
		data:   append(make([]*FlightSensorData, 0, len(seed)), seed...),
	}
}

func (sensorDataOperation *MemorySensorDataOperation) GetSensorData(flightId string) ([]*FlightSensorData, error) {
	if flightId == "" {
		result := make([]*FlightSensorData, len(sensorDataOperation.data))
		copy(result, sensorDataOperation.data)
		return result, nil
	}
	return utils.Filter(sensorDataOperation.data, func(data *FlightSensorData) bool {
		return data.FlightId == flightId
	}), nil
}
