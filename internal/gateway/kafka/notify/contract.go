//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
package notify

type producer interface {
	SendMessage(topic string, key string, value []byte) error
}
