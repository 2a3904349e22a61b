package domain

// Tables lists every entity migrated by the gorm storage backend.
var Tables = []interface{}{
	&Product{},
	&Invoice{},
}
