// Package operation
package operation

type DatabaseOperations struct {
	userOperation        UserOperationInterface
	logbookOperation     LogbookOperationInterface
	aircraftOperation    AircraftOperationInterface
	maintenanceOperation MaintenanceOperationInterface
	partOrderOperation   PartOrderOperationInterface
	supplierOperation    SupplierOperationInterface
	sensorDataOperation  SensorDataOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	logbookOperation LogbookOperationInterface,
	aircraftOperation AircraftOperationInterface,
	maintenanceOperation MaintenanceOperationInterface,
	partOrderOperation PartOrderOperationInterface,
	supplierOperation SupplierOperationInterface,
	sensorDataOperation SensorDataOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:        userOperation,
		logbookOperation:     logbookOperation,
		aircraftOperation:    aircraftOperation,
		maintenanceOperation: maintenanceOperation,
		partOrderOperation:   partOrderOperation,
		supplierOperation:    supplierOperation,
		sensorDataOperation:  sensorDataOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}

func (db *DatabaseOperations) LogbookOperation() LogbookOperationInterface {
	return db.logbookOperation
}

func (db *DatabaseOperations) AircraftOperation() AircraftOperationInterface {
	return db.aircraftOperation
}

func (db *DatabaseOperations) MaintenanceOperation() MaintenanceOperationInterface {
	return db.maintenanceOperation
}

func (db *DatabaseOperations) PartOrderOperation() PartOrderOperationInterface {
	return db.partOrderOperation
}

func (db *DatabaseOperations) SupplierOperation() SupplierOperationInterface {
	return db.supplierOperation
}

func (db *DatabaseOperations) SensorDataOperation() SensorDataOperationInterface {
	return db.sensorDataOperation
}
