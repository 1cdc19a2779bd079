package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	grpc_pool "github.com/JoeShih716/go-interest-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-interest-ledger/proto"
)

const (
	Target      = "localhost:50051"
	AssetID     = "USD"
	TotalCount  = 1000000
	Concurrency = 1000
)

func main() {
	pool := grpc_pool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	totalCount := TotalCount
	concurrency := Concurrency
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(totalCount)

	sem := make(chan struct{}, concurrency)

	startTime := time.Now()

	for i := 0; i < totalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			refID := uuid.New().String()
			resp, err := c.Deposit(ctx, &pb.DepositRequest{
				RefId:     refID,
				AccountId: 1,
				AssetId:   AssetID,
				Amount:    10000,
			})

			if err != nil {
				if idx%10000 == 0 {
					log.Printf("Deposit %d failed: %v", idx, err)
				}
				return
			}
			if !resp.Success && idx%10000 == 0 {
				log.Printf("Deposit %d rejected: %s", idx, resp.Message)
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", totalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(totalCount)/elapsed.Seconds())

	// 壓測結束後查一次含息餘額
	balance, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AssetId: AssetID, AccountId: 1})
	if err != nil {
		log.Fatalf("GetBalance failed: %v", err)
	}
	fmt.Printf("Final balance (with accrued interest): %d\n", balance.Balance)
}
