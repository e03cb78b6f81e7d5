package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	rfGrpc "liyu1981.xyz/rf-code-hub/pkg/grpc"
)

var maxCodes int = 2000
var pressesPerCode int = 3
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:1081"

var grpcClient *rfGrpc.RFHubClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	codes := make([]int64, maxCodes)
	for i := range maxCodes {
		codes[i] = randomCode()
	}
	fmt.Printf("generated %v codes\n", maxCodes)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	conn, err := grpc.Dial(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = rfGrpc.NewRFHubClient(conn)
	fmt.Printf("gRPC server verified and connected\n")

	var limited atomic.Int64

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxCodes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// a remote repeats its frame for every press
			for range pressesPerCode {
				if !ingest(codes[i]) {
					limited.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	total := maxCodes * pressesPerCode
	fmt.Printf(
		"ingested %v frames (%v rate limited): used time=%v seconds, throughput=%v frame/second\n",
		total, limited.Load(), usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxCodes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolve(codes[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"resolved %v codes over http: used time=%v seconds, throughput=%v request/second\n",
		maxCodes, usedTime.Seconds(), float64(maxCodes)/usedTime.Seconds(),
	)
}

func randomCode() int64 {
	rndMu.Lock()
	defer rndMu.Unlock()
	// 24 bit codes, the common fixed code remote range
	return rnd.Int63n(1 << 24)
}

func ingest(code int64) bool {
	req, err := structpb.NewStruct(map[string]any{"code": code, "status": "received"})
	if err != nil {
		panic(err)
	}
	if _, err := grpcClient.IngestCode(context.Background(), req); err != nil {
		return false
	}
	return true
}

func resolve(code int64) {
	resp, err := http.Get(fmt.Sprintf("http://%s/codes/%d/availability", httpHostPort, code))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var availability map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		panic(err)
	}
}
