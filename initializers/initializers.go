package initializers

import (
	"context"
	"hr-recruit-backend/config"
	"hr-recruit-backend/fiberlog"
	"hr-recruit-backend/lib/analytics"
	applicanthandler "hr-recruit-backend/lib/applicant"
	xlsexport "hr-recruit-backend/lib/export/xls"
	filestorage "hr-recruit-backend/lib/file-storage"
	interviewhandler "hr-recruit-backend/lib/interview"
	jobhandler "hr-recruit-backend/lib/job"
	notificationhandler "hr-recruit-backend/lib/notification"
	notificationworker "hr-recruit-backend/lib/notification/worker"
	offerhandler "hr-recruit-backend/lib/offer"
	screeninghandler "hr-recruit-backend/lib/screening"
	smsclient "hr-recruit-backend/lib/sms"
	usershandler "hr-recruit-backend/lib/users"
	connectionhub "hr-recruit-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	s3 := InitS3()
	InitSmtp()
	smsclient.NewProvider()
	connectionhub.Init()
	filestorage.NewHandler(s3.GetClient())
	usershandler.NewHandler()
	jobhandler.NewHandler()
	notificationhandler.NewHandler()
	applicanthandler.NewHandler()
	screeninghandler.NewHandler()
	interviewhandler.NewHandler()
	offerhandler.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача отправки уведомлений по email/sms
	notificationworker.StartWorker(ctx)
}
