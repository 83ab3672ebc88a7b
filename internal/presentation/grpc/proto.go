package grpc

// proto.go defines the bib.routing.v1.RoutingService contract by hand.
// Messages travel as JSON through jsonCodec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/domain/model"
)

const (
	ServiceName = "bib.routing.v1.RoutingService"

	MethodValidateRoutingNumber = "/" + ServiceName + "/ValidateRoutingNumber"
	MethodValidateBatch         = "/" + ServiceName + "/ValidateBatch"
	MethodListValidations       = "/" + ServiceName + "/ListValidations"
	MethodGetValidationStats    = "/" + ServiceName + "/GetValidationStats"
)

type ValidateRoutingNumberRequest struct {
	RoutingNumber string `json:"routing_number"`
}

type ValidateRoutingNumberResponse struct {
	model.ValidationResult
}

type ValidateBatchRequest struct {
	RoutingNumbers []string `json:"routing_numbers"`
}

type ValidateBatchResponse struct {
	dto.ValidateBatchResponse
}

type ListValidationsRequest struct {
	Limit int32 `json:"limit"`
}

type ValidationRecord struct {
	CreatedAt          *timestamppb.Timestamp `json:"created_at"`
	CheckDigit         *int32                 `json:"check_digit,omitempty"`
	ExpectedCheckDigit *int32                 `json:"expected_check_digit,omitempty"`
	ID                 string                 `json:"id"`
	RoutingNumber      string                 `json:"routing_number"`
	Outcome            string                 `json:"outcome"`
	Valid              bool                   `json:"valid"`
}

type ListValidationsResponse struct {
	Validations []*ValidationRecord `json:"validations"`
}

type GetValidationStatsRequest struct{}

type GetValidationStatsResponse struct {
	ByOutcome map[string]int64 `json:"by_outcome"`
	Total     int64            `json:"total"`
}

// RoutingServiceServer is the server API for RoutingService.
type RoutingServiceServer interface {
	ValidateRoutingNumber(context.Context, *ValidateRoutingNumberRequest) (*ValidateRoutingNumberResponse, error)
	ValidateBatch(context.Context, *ValidateBatchRequest) (*ValidateBatchResponse, error)
	ListValidations(context.Context, *ListValidationsRequest) (*ListValidationsResponse, error)
	GetValidationStats(context.Context, *GetValidationStatsRequest) (*GetValidationStatsResponse, error)
	mustEmbedUnimplementedRoutingServiceServer()
}

// UnimplementedRoutingServiceServer provides forward-compatible default implementations.
type UnimplementedRoutingServiceServer struct{}

func (UnimplementedRoutingServiceServer) ValidateRoutingNumber(context.Context, *ValidateRoutingNumberRequest) (*ValidateRoutingNumberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateRoutingNumber not implemented")
}
func (UnimplementedRoutingServiceServer) ValidateBatch(context.Context, *ValidateBatchRequest) (*ValidateBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateBatch not implemented")
}
func (UnimplementedRoutingServiceServer) ListValidations(context.Context, *ListValidationsRequest) (*ListValidationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListValidations not implemented")
}
func (UnimplementedRoutingServiceServer) GetValidationStats(context.Context, *GetValidationStatsRequest) (*GetValidationStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetValidationStats not implemented")
}
func (UnimplementedRoutingServiceServer) mustEmbedUnimplementedRoutingServiceServer() {}

// RegisterRoutingServiceServer registers srv with the gRPC server.
func RegisterRoutingServiceServer(s *grpclib.Server, srv RoutingServiceServer) {
	s.RegisterService(&_RoutingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _RoutingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RoutingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ValidateRoutingNumber", Handler: _RoutingService_ValidateRoutingNumber_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ValidateBatch", Handler: _RoutingService_ValidateBatch_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ListValidations", Handler: _RoutingService_ListValidations_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetValidationStats", Handler: _RoutingService_GetValidationStats_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "bib/routing/v1/routing.proto",
}

//nolint:revive,errcheck // gRPC handler registration
func _RoutingService_ValidateRoutingNumber_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateRoutingNumberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutingServiceServer).ValidateRoutingNumber(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodValidateRoutingNumber,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoutingServiceServer).ValidateRoutingNumber(ctx, req.(*ValidateRoutingNumberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RoutingService_ValidateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutingServiceServer).ValidateBatch(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodValidateBatch,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoutingServiceServer).ValidateBatch(ctx, req.(*ValidateBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RoutingService_ListValidations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListValidationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutingServiceServer).ListValidations(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodListValidations,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoutingServiceServer).ListValidations(ctx, req.(*ListValidationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RoutingService_GetValidationStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetValidationStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutingServiceServer).GetValidationStats(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: MethodGetValidationStats,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoutingServiceServer).GetValidationStats(ctx, req.(*GetValidationStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
