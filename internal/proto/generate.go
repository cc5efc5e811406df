// Package proto holds the protobuf messages and gRPC bindings of the
// storekeeper.v1.Store service.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative store.proto
