package sqlinline

const QListExpenses = `--sql 986ca3f1-c450-4c62-beee-60b4124b966d
select
  e.id,
  e.program_id,
  p.title,
  e.description,
  e.amount::text,
  e.expense_date,
  coalesce(e.invoice_url, ''),
  e.created_at,
  e.updated_at
from expenses e
join programs p on p.id = e.program_id
where ($1::text = '' or e.program_id::text = $1::text)
order by e.expense_date desc, e.created_at desc;
`

const QSelectExpense = `--sql 448da94e-390a-4df9-9c64-c426599276b7
select
  e.id,
  e.program_id,
  p.title,
  e.description,
  e.amount::text,
  e.expense_date,
  coalesce(e.invoice_url, ''),
  e.created_at,
  e.updated_at
from expenses e
join programs p on p.id = e.program_id
where e.id = $1::uuid
limit 1;
`

const QInsertExpense = `--sql a385f3c9-0f50-4432-8d52-fcf740fdc37b
insert into expenses(program_id, description, amount, expense_date, invoice_url, created_at, updated_at)
values ($1::uuid, $2::text, $3::numeric, $4::date, nullif($5::text, ''), now(), now())
returning id, created_at, updated_at;
`

const QUpdateExpense = `--sql 2d40bdda-4f45-4678-b46e-a958635979f6
update expenses
set program_id = $2::uuid,
    description = $3::text,
    amount = $4::numeric,
    expense_date = $5::date,
    invoice_url = nullif($6::text, ''),
    updated_at = now()
where id = $1::uuid
returning created_at, updated_at;
`

const QDeleteExpense = `--sql 1eaffd39-4d26-4f29-9460-53f1b1aec36d
delete from expenses
where id = $1::uuid;
`

const QExpenseTotalForProgram = `--sql 0a44c407-b8b1-45ae-905d-cd43ba585c73
select coalesce(sum(amount), 0)::text
from expenses
where program_id = $1::uuid;
`
