package constvars

const (
	MongoCollectionPayments      = "payments"
	MongoCollectionConversations = "conversations"
	MongoCollectionAccounts      = "accounts"
)
