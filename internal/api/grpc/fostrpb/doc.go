// Package fostrpb holds the generated protobuf messages and gRPC stubs
// for proto/fostr.proto.
package fostrpb

//go:generate protoc -I ../../../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative fostr.proto
