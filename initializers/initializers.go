package initializers

import (
	"context"

	"employee-requests-backend/config"
	"employee-requests-backend/fiberlog"
	authhandler "employee-requests-backend/lib/auth"
	requesthandler "employee-requests-backend/lib/request"
	usershandler "employee-requests-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	authhandler.NewHandler()
	usershandler.NewHandler()
	requesthandler.NewHandler()
}
