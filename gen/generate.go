// Package gen holds generated code. Run `go generate ./gen` after editing
// the proto sources; the outputs under gen/proto are not committed.
package gen

//go:generate protoc --proto_path=../proto --go_out=.. --go_opt=module=github.com/printshelf/printshelf --go-grpc_out=.. --go-grpc_opt=module=github.com/printshelf/printshelf printshelf/v1/printshelf.proto
