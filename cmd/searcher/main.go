// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/resqnet/protosearch"
	"github.com/resqnet/protosearch/core"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	service, err := protosearch.NewService("./protocol_db")
	if err != nil {
		panic(err)
	}
	defer service.Close()

	query := "cardiac arrest"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	response, err := service.Search(ctx, protosearch.SearchRequest{
		RawQuery: query,
		Tier:     core.TierEnterprise,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits\n", response.TotalFound)
	for i, hit := range response.Results {
		fmt.Printf("%d: '%s %s' (%d)[%0.1f]\n", i, hit.DocumentNumber, hit.Title, hit.Id, hit.Score)
	}
}
