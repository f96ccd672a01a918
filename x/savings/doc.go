/*
Package savings implements a time-locked savings ledger.

An account owner locks funds into a goal for a chosen duration and earns
simple interest, prorated per second against an annual rate expressed in
basis points. Interest is virtual until it is compounded into the principal
or paid out. Withdrawing before the lock expires is possible only through an
emergency withdrawal, which applies a penalty configured by the chain
administrator.

Funds are held in custody on a per-goal condition address and moved through
the cash controller, so the extension never mints or burns tokens itself.
*/
package savings
