// Package airnet is an in-memory flight network explorer: airports,
// directed routes weighted by flight time and cost, and shortest-path
// queries over them.
//
// Layout:
//
//	network          Network (airports, routes), BFS reachability, Dijkstra
//	                 by time or cost, and the connection-penalty variant
//	seed             demo topology and TOML topology files
//	internal/config  TOML configuration, logrus + lumberjack logging
//	internal/shell   interactive menu, input validation, text/JSON output
//	cmd/airnet       the binary
//
// Demo network (seed.Default), hours/R$:
//
//	GRU ─1.5/300─► GIG ─2.0/350─► BSB ─2.0/320─► GRU
//	GRU ─3.0/500─► SSA ─1.8/200─► BSB
//	GIG ─2.5/400─► SSA
//	POA ─2.0/450─► GRU            FLN, MAO (no routes)
//
//	go install github.com/katalvlaran/airnet/cmd/airnet@latest
package airnet
