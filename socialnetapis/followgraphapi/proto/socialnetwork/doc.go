// Package socialnetwork contains the messages and gRPC bindings of the
// social_network.SocialNetworkService declared in social_network.proto.
//
// The messages are encoded by hand with protowire. Importing this package
// registers a codec under the "proto" name that replaces the default gRPC
// protobuf codec for the whole process. Generated protobuf messages are
// still marshaled by the protobuf runtime, so other services in the same
// binary keep working.
package socialnetwork
