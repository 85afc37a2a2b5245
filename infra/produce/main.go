package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	ReadingService *ReadingProduceService
	AlertService   *AlertProduceService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	readingService := InitReadingProduceService(channel)
	if readingService == nil {
		panic("Failed to initialize Reading produce service")
	}

	alertService := InitAlertProduceService(channel)
	if alertService == nil {
		panic("Failed to initialize Alert produce service")
	}

	produceInstance = &Produce{
		ReadingService: readingService,
		AlertService:   alertService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
