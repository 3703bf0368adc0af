// Package dating holds the gRPC contract of the dating API, generated from
// api/proto/dating.proto, plus conversions from storage models.
package dating

//go:generate protoc -I ../../../api/proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative dating.proto
