package services

// ServiceContainer holds all service interfaces for dependency injection
// into the HTTP layer.
type ServiceContainer struct {
	Account            AccountSvcFacade
	Goal               GoalSvcFacade
	Summary            SummarySvcFacade
	Settings           SettingsSvcFacade
	User               UserSvcFacade
	Token              TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
