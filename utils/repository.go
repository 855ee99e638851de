package utils

type Tabler interface {
	TableName() string
}

// Repository is the common persistence surface shared by all per-table
// repositories. Tx is the transaction handle type of the underlying store;
// passing the zero value executes against the root connection.
type Repository[ID any, T Tabler, Tx any] interface {
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	All() ([]T, error)
	Save(tx Tx, t *T) error
	SaveBatch(tx Tx, ts []T) error
	GetDB(tx Tx) Tx
}
