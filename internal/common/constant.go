package common

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// bearer token on inbound requests.
const AccessTokenHeaderName = "access_token"
