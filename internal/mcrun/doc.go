// Package mcrun runs the McStas mcrun tool on an instrument file and loads
// the data folder it produces.
//
// The command line has the fixed shape
//
//	<mcrun path>/mcrun -c -n <ncount> --mpi=<mpi> -d <folder> <flags> <file> name=value ...
//
// and is executed through the platform shell, so custom flags may use shell
// syntax. Parameters are written in name order.
package mcrun
