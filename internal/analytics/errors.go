package analytics

import "fmt"

// InvalidInputError 呼叫端傳入缺失的集合，屬於程式錯誤，不應被吞掉
type InvalidInputError struct {
	Operation string
	Reason    string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("analytics: %s: %s", e.Operation, e.Reason)
}

func nilCollection(operation string) error {
	return &InvalidInputError{Operation: operation, Reason: "employee collection is nil"}
}
