/*
Package abcdgen generates ABCD (Artificial Benchmark for Community
Detection) random graphs: given a degree sequence, a community-size
sequence, and a mixing parameter, it produces a simple undirected graph
partitioned into communities whose intra/inter-community edge mix
realizes the target mixing.

Generate takes Params already validated by params.New, assigns vertices to communities
(package cluster), then lays down edges with either the Chung–Lu engine
(package chunglu) or the configuration-model engine (package
configmodel), selected by Params.IsCL.
*/
package abcdgen
