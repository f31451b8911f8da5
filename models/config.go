package models

import (
	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/settings"
)

var settingsData = settings.GetSettings()

// MongoDB
var DbConnect = db.NewConnection(
	settingsData.MONGO_HOST,
	settingsData.MONGO_DB,
)
