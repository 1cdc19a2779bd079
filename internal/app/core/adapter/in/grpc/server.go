package grpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-interest-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-interest-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-interest-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	coordinator *usecase.PoolCoordinator
}

func NewGrpcServer(coordinator *usecase.PoolCoordinator) *GrpcServer {
	return &GrpcServer{
		coordinator: coordinator,
	}
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {
	// 1. UUID 解析
	refID, err := uuid.Parse(req.RefId)
	if err != nil {
		return &pb.DepositResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}

	// 2. 執行存入
	err = s.coordinator.Deposit(ctx, req.AccountId, req.AssetId, big.NewInt(req.Amount), refID)
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		return &pb.DepositResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	// 3. [Optional] 取得最新含息餘額 (Best Effort)
	balance := s.bestEffortBalance(ctx, req.AssetId, req.AccountId)

	return &pb.DepositResponse{
		Success:        true,
		CurrentBalance: balance,
	}, nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	refID, err := uuid.Parse(req.RefId)
	if err != nil {
		return &pb.WithdrawResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}

	err = s.coordinator.Withdraw(ctx, req.AccountId, req.AssetId, big.NewInt(req.Amount), refID)
	if err != nil {
		return &pb.WithdrawResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	balance := s.bestEffortBalance(ctx, req.AssetId, req.AccountId)

	return &pb.WithdrawResponse{
		Success:        true,
		CurrentBalance: balance,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.coordinator.GetUserBalance(ctx, req.AssetId, req.AccountId)
	if err != nil {
		if errors.Is(err, domain.ErrMarketNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !balance.IsInt64() {
		return nil, status.Error(codes.Internal, "balance overflows int64")
	}
	return &pb.GetBalanceResponse{
		Balance: balance.Int64(),
	}, nil
}

func (s *GrpcServer) InitializeMarket(ctx context.Context, req *pb.InitializeMarketRequest) (*pb.InitializeMarketResponse, error) {
	refID, err := uuid.Parse(req.RefId)
	if err != nil {
		return &pb.InitializeMarketResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}
	rateRay, ok := new(big.Int).SetString(req.AnnualRateRay, 10)
	if !ok {
		return &pb.InitializeMarketResponse{
			Success: false,
			Message: "invalid annual_rate_ray",
		}, nil
	}

	err = s.coordinator.InitializeMarket(ctx, req.CallerId, req.AssetId, rateRay, refID)
	if err != nil {
		return &pb.InitializeMarketResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}
	return &pb.InitializeMarketResponse{Success: true}, nil
}

func (s *GrpcServer) SetInterestRate(ctx context.Context, req *pb.SetInterestRateRequest) (*pb.SetInterestRateResponse, error) {
	refID, err := uuid.Parse(req.RefId)
	if err != nil {
		return &pb.SetInterestRateResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}
	rateRay, ok := new(big.Int).SetString(req.AnnualRateRay, 10)
	if !ok {
		return &pb.SetInterestRateResponse{
			Success: false,
			Message: "invalid annual_rate_ray",
		}, nil
	}

	err = s.coordinator.SetInterestRate(ctx, req.CallerId, req.AssetId, rateRay, refID)
	if err != nil {
		return &pb.SetInterestRateResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}
	return &pb.SetInterestRateResponse{Success: true}, nil
}

// bestEffortBalance 操作成功後順手查一次含息餘額，查不到就回 0
func (s *GrpcServer) bestEffortBalance(ctx context.Context, assetID string, account int64) int64 {
	balance, err := s.coordinator.GetUserBalance(ctx, assetID, account)
	if err != nil || !balance.IsInt64() {
		return 0
	}
	return balance.Int64()
}
