package integration_test

const (
	TestAdminUsername = "admin"
	TestAdminPassword = "novaflix"

	// Catalog movies used across scenarios
	TestMovieDarkId          = "8"
	TestMovieDarkTrailerId   = "rrwycJ08PSA"
	TestMovieWednesdayId     = "2"
	TestMovieMoneyHeistId    = "7"
	TestUnknownMovieId       = "404"
	TestAdminCategoryAction  = "cat4"
	TestAdminCategoryUnknown = "cat404"
)
