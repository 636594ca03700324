package domain

// Record is a validated document bound to a named collection
type Record interface {
	TableName() string
}

var Tables = []Record{
	&User{},
	&Product{},
	&DemoRequest{},
}
