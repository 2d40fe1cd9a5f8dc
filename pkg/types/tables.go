package types

// Standard table names for Vault.GetTable.
const (
	CardsTable      = "cards"
	CollectionTable = "collection_status"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	CardsTable,
	CollectionTable,
}
